// Package sanitizer normalizes user input before validation.
//
// Sanitizers are applied through `sanitize` struct tags:
//
//	type Message struct {
//		Name    string `sanitize:"no_control,single_line"`
//		Email   string `sanitize:"no_control,trim_lower"`
//		Message string `sanitize:"no_control,text"`
//	}
//
//	if err := sanitizer.Struct(&msg); err != nil {
//		return err
//	}
package sanitizer
