// Package sqlfmt is the entry point for formatting T-SQL text.
//
// An Engine parses the input, renders it with a style.Style and turns every
// outcome into a Result. Callers never receive a panic or a Go error from the
// Engine: syntax errors and formatter faults are reported in Result.Errors and
// the original text is handed back unchanged.
//
//	engine := sqlfmt.New(
//		sqlfmt.WithStyle(style.Compact),
//		sqlfmt.WithLocale(sqlfmt.Japanese),
//	)
//
//	sql := "select id from users where active = 1"
//	result := engine.FormatWithDetails(&sql)
//	if !result.Success {
//		fmt.Println(engine.Summary(result))
//		return
//	}
//
//	fmt.Println(result.Text())
//
// Comments are not preserved by formatting. When the input contained any, the
// Result succeeds with one Warning per comment.
package sqlfmt
