// Package convert switches pressure and flux fields between the kinematic
// (incompressible) and dynamic (compressible) conventions.
//
// The conversion of one field is a three step affair:
//
//   - classify its dimension with [dimension.ClassifyPressure] or
//     [dimension.ClassifyFlux]
//   - [Plan] an [Action] for that kind and the requested [Direction]
//   - apply the planned [Transform] and write the derived field
//
// [Converter] runs these steps for the pressure field and then for the
// flux field at one explicitly selected time.
//
// # Example
//
//	params, _ := convert.NewParams(&rhoRef, 101325)
//	c, _ := convert.New(store, params, convert.Inverse)
//	report, err := c.Run(ctx, instant)
package convert
