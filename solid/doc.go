/*
Package solid groups paired examples of four SOLID principles.

Each principle lives in its own directory with two packages: violation shows
the structure the principle argues against, compliant shows the refactored
shape. Both sides print the same demonstration text to an io.Writer so the
pairs can be compared line by line.

	dip  Dependency Inversion
	isp  Interface Segregation
	ocp  Open/Closed
	srp  Single Responsibility
*/
package solid
