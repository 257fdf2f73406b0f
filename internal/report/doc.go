// Package report turns clustering measurements into line charts: distortion
// curves over k and closest-pair running times over input size. The chart
// format follows the output file extension (png, svg, pdf, ...).
package report
