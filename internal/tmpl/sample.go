package tmpl

import "fmt"

// SampleTemplate returns a campaign template for a user to tweak as needed
func SampleTemplate(name, version string) string {
	return fmt.Sprintf(`_FN / _LN / _EA = first name / last name / email address

Hello %%_FN%% // %%_LN%%, how are things going at %%ORG%%?
this is your email: %%_EA%% :)


Sent with %s version %s, see https://github.com/oarkflow/%s for details
`, name, version, name)
}
