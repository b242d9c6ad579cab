// Package mineral defines the four resource kinds of the robot-factory
// puzzle and Amounts, the fixed four-component quantity vector used for
// held materials, robot counts and build costs alike.
//
// Amounts is a plain comparable value type: arithmetic is componentwise,
// equality is componentwise, and a vector (or a struct of vectors) can be
// used directly as a map key. AtMost implements the componentwise partial
// order that drives affordability checks and dominance pruning — note that
// it is not a total order: two vectors may each fail AtMost against the
// other.
package mineral
