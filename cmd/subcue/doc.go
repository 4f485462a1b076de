// Command subcue processes recorded speech into a formatted subtitle track
// plus a per-file summary report.
package main
