package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in test names.
var All = map[string][]TestCase{
	"fill":    fillCases,
	"outline": outlineCases,
}
