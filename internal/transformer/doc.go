// Package transformer spells numbers out word by word. Each rendered
// character of a number becomes an English word ("Minus one point five"),
// while NaN, the infinities and the smallest positive double get fixed
// phrases.
package transformer
