// Package arithma implements an arbitrary-precision complex calculator with
// units of measure and reactive variables.
//
// The syntax of expressions is intended to be similar to math you'd write in
// your notes. "2 x y" is a multiplication of three terms, and so is "2(x)y".
// Superscript text is an exponent, so "x²" is "x^(2)". Units follow their
// magnitudes: "3 km + 200 m" is 3.2 km, and "9.8 m s⁻²" is an acceleration.
// The letter e after a number is e-notation, so "6.02e23" is 6.02×10²³.
// "-2^2" is 4, because negation applies to the term that follows it.
//
// Expressions are lexed once into an Expression and evaluated by an
// Interpreter. An Interpreter may assign its result to a variable in its
// Environment; other interpreters which read the variable are re-evaluated
// whenever it changes.
//
// Polynomial finds the roots of real polynomials in closed form up to degree
// four, and numerically for any degree.
package arithma
