// Package paramset resolves a program's parameters from built-in defaults,
// an optional config file and the command line into one typed store.
//
// Precedence, lowest to highest:
//  1. Defaults from the definitions
//  2. The config file (JSON, YAML or HCL, see package config)
//  3. Command-line options
//
// # Defining Parameters
//
// Each definition's default fixes the parameter's kind (text, integer,
// float or boolean). Config file and command-line values are coerced to
// that kind or rejected:
//
//	defs := paramset.Definitions{
//	    paramset.Param("txt", paramset.Text("Hello"), []string{"text"}, "strarg", 's', "string argument"),
//	    paramset.Param("cnt", paramset.Int(1), []string{"count"}, "intarg", 'i', "integer argument"),
//	    paramset.Param("rad", paramset.Float(2.3), []string{"radius"}, "doublearg", paramset.NoShort, "double argument"),
//	    paramset.File("flg", paramset.Bool(true), "path", "to", "flag"),
//	    paramset.Option("conf", paramset.Text(""), "config", 'c', "config file path"),
//	    paramset.Const("PI", paramset.Float(3.14)),
//	}
//
// # Loading
//
//	pm, err := paramset.New(defs)
//	if err != nil {
//	    return err
//	}
//	// "conf" holds the config file path; require two positional arguments.
//	if err := pm.Load(os.Args[1:], "conf", 2); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprint(os.Stderr, pm.Usage())
//	    os.Exit(2)
//	}
//
// Options are written "--long value", "--long=value" or "-s value". Every
// option takes a value, booleans included ("--verbose true"). Tokens that
// are not defined options, and are not option values, are kept in order
// and returned by Rest.
//
// # Reading
//
//	txt, err := pm.Text("txt")
//	cnt, err := paramset.Get[int](pm, "cnt")
//
//	var rad float64
//	err = pm.Scan("rad", &rad)
//
// Reads never convert between kinds: reading an integer parameter as a
// float is an ErrTypeMismatch.
package paramset
