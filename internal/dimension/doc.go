// Package dimension describes the physical units of a field as exponents
// over the seven base units and classifies them into the pressure and flux
// conventions that fluxconv converts between.
//
//   - [Dimension]: comparable tuple of rational [Exponent] values
//   - [Kind]: closed classification of a dimension
//   - [Classify], [ClassifyPressure], [ClassifyFlux]: exact matching
//
// # Example
//
//	d, _ := dimension.Parse("[1 -1 -2 0 0 0 0]")
//	dimension.Classify(d) // dimension.DynamicPressure
//
// Dimensions are values. Two dimensions are equal with == iff every
// exponent matches exactly, so there is no tolerance in classification.
package dimension
