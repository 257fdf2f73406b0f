// Package dataset produces the point tables that geocluster clusters: county
// tables read from CSV and uniformly random point sets for timing runs.
//
// CSV rows carry no header and have exactly five fields:
//
//	id,horiz,vert,population,risk
//
// e.g. "06037,104.0,379.0,9519338,0.0001".
package dataset
