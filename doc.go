// Package cxpr compiles and evaluates arithmetic expressions over complex
// numbers.
//
// An expression compiles once into a tree and evaluates any number of times.
// Values are pairs of IEEE-754 doubles: "3+2I" is the complex number 3+2i,
// and the builtin constant I is √-1, so "e^(I*pi)+1" means what the notation
// suggests. Compilation folds constant subexpressions, so repeated
// evaluation of mostly-constant expressions is cheap.
//
// Variables bind by address. A compiled tree reads each bound variable's
// storage anew on every evaluation, so the caller can mutate the storage
// between evaluations and re-evaluate without recompiling. That also means
// the caller is responsible for serializing mutation against concurrent
// evaluation; compiling and evaluating independent expressions on separate
// goroutines needs no synchronization.
//
// Two grammar quirks are kept deliberately from the engine this package
// descends from: "^" is left associative, so 2^3^2 is (2^3)^2 = 64, and a
// leading sign binds tighter than "^", so -2^2 is (-2)^2 = 4.
//
// Evaluation never fails. Mathematical nonsense such as 0/0 propagates as
// NaN components in the result, the way floating point always does, and
// log is the natural logarithm as is usual in complex analysis.
package cxpr
