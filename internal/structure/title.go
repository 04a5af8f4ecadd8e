package structure

// findTitle implements spec step 4.1.2.1: the first Markdown heading line,
// if any.
func findTitle(text string) string {
	loc := titlePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return ""
	}
	return text[loc[2]:loc[3]]
}
