// Package calc implements a float64 calculator with user-defined functions.
//
// Expressions use + - * / and ^ with the usual precedence; ^ groups to the
// right, "2^3^2" being "2^(3^2)". A sign with no left operand is unary, so
// "4+-5" is "4+(0-5)". The sign applies to the single operand or
// parenthesized group that follows it: "-2^2" is "(0-2)^2", which is 4.
//
// Parsing is a shunting-yard pass that builds the tree directly. Division by
// zero follows IEEE 754 and gives an infinity or NaN, not an error.
//
// Functions are templates: "fn hyp(a,b){(a^2+b^2)^0.5}" parses the body once
// with a and b as placeholders, and "hyp(3,4)" substitutes the arguments and
// evaluates the result.
package calc
