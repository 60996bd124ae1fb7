// Package demo holds the sample commands of the pcmd shell. They exercise
// option splitting, defaults, variadic casting and raw handlers.
package demo

import (
	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

// PrintDoc is the help text of the print command.
const PrintDoc = `Print a given string (defaults to "abc").
Print nothing if -flag is set to false.
Print multiple copies if -repeat N option is given.`

// Commands returns the demo handlers.
func Commands() []*dispatchers.Handler {
	return []*dispatchers.Handler{
		Print(),
		Double(),
		Multiply(),
		Shell(),
	}
}

// Print echoes its argument.
func Print() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "print",
		Summary:  `Print a given string (defaults to "abc")`,
		Doc:      PrintDoc,
		Category: dispatchers.CategoryGeneral,
		Signature: dispatchers.NewSignature().
			Optional("line", "abc").
			Option("flag", true).
			Option("repeat", 1).
			Cast("flag", casters.Bool).
			Cast("repeat", casters.Int),
		Action: printLine,
	})
}

func printLine(sh *dispatchers.Shell, call *dispatchers.Call) error {
	if !call.Bool("flag") {
		return nil
	}
	line := call.String("line")
	for range call.Int("repeat") {
		_, _ = sh.Println(line)
	}
	return nil
}

// Double prints twice every number given.
func Double() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:      "double",
		Summary:   "Print the double of every number given",
		Doc:       "Print the double of every number given.",
		Category:  dispatchers.CategoryMath,
		Signature: dispatchers.NewSignature().Rest("nums").Cast("nums", casters.Int),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			for _, n := range call.RestInts() {
				_, _ = sh.Println(2 * n)
			}
			return nil
		},
	})
}

// Multiply prints mul times every number given.
func Multiply() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "multiply",
		Summary:  "Print `mul` times the numbers given",
		Doc:      "Print `mul` times the numbers given.",
		Category: dispatchers.CategoryMath,
		Signature: dispatchers.NewSignature().
			Arg("mul").
			Rest("nums").
			Cast("mul", casters.Int).
			Cast("nums", casters.Int),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			mul := call.Int("mul")
			for _, n := range call.RestInts() {
				_, _ = sh.Println(mul * n)
			}
			return nil
		},
	})
}

// Shell echoes the remainder of the line untouched. The "!" shortcut
// dispatches here.
func Shell() *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:     "shell",
		Summary:  "Echo the rest of the line without parsing it",
		Doc:      "Echo the rest of the line without parsing it.\nAlso reachable as !line.",
		Category: dispatchers.CategoryBuiltin,
		Raw:      true,
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			_, _ = sh.Println(call.Raw)
			return nil
		},
	})
}
