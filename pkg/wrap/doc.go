// Package wrap implements composable inline decorators.
//
// A Wrapper holds an opening and a closing delimiter. It can wrap text in a
// single call, or take part in a left-to-right composition chain where text,
// wrappers and accumulated Content are combined pairwise:
//
//	bold := wrap.New("**")
//	italic := wrap.New("_")
//	out, err := wrap.Chain(bold, wrap.Text("hello"), italic, wrap.Text("world"), italic, bold)
//	// out == "**hello_world_**"
//
// The first Wrapper in a chain contributes its opening delimiter; any Wrapper
// that follows accumulated Content contributes its closing delimiter.
package wrap
