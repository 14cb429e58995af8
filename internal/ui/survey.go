package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption returns a survey option that sets the question icon to "-".
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// StringValidator adapts a plain string validator to survey.
func StringValidator(fn func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return fn(s)
	}
}
