// This file is part of Gophervaders.
//
// Gophervaders is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervaders is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervaders.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package,
// with some differences. Whereas, with flag.FlagSet you call Parse() with
// the array of strings as the only argument, with modalflag you first call
// NewArgs() with the array of arguments and then Parse() with no
// arguments. For example (note that no error handling of the Parse()
// function is shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The reason for this difference is to allow effective parsing of modes
// and sub-modes.
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// These flag functions return a pointer to a variable of the specified
// type. The initial value of these variables is the default value, the
// second argument in the function call above. The Parse() function will
// set these values appropriately according to what the user has requested.
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In
// this context, a mode is a special command line argument that when
// specified, puts the program into a different mode of operation. Each
// mode can be different enough to require a different set of flags and
// expected arguments.
//
// The modalflag package handles sub-modes with the AddSubModes() function.
// This function takes any number of string arguments, each one the name of
// a mode.
//
//	md.AddSubModes("play", "performance", "regress")
//
// For simplicity, all sub-mode comparisons are case insensitive.
//
// Subsequent calls to Parse() will then process flags in the normal way
// but unlike the regular flag.Parse() function will check to see if the
// first argument after the flags is one of these modes. If it is, then the
// RemainingArgs() function will return all the arguments after the flags
// AND the mode selector.
//
// So, for example:
//
//	md.Parse()
//	switch md.Mode() {
//	case "PLAY":
//		playMode(*verbose)
//	default:
//		fmt.Printf("%s not yet implemented", md.Mode())
//	}
//
// Now that we've decided on what mode we're in, we can again call Parse()
// to process the remaining arguments. This second call to Parse() will
// check for any additional flags and any further sub-modes.
//
// We can chain modes together as deep as we want. For example, the
// "regress" mode added above can itself be divided into several different
// modes:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("play", "performance", "regress")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "REGRESS":
//		md.NewMode()
//		md.AddSubModes("run", "list", "add")
//		_, _ = md.Parse()
//		switch md.Mode() {
//		case "RUN":
//			regressRun()
//		case "LIST":
//			regressList()
//		case "ADD":
//			regressAdd()
//		}
//	default:
//		fmt.Printf("%s not yet implemented", md.Mode())
//	}
package modalflag
