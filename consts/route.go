package consts

// Pattern mini-language markers.
const (
	RuneFwdSlash = '/'
	RuneColon    = ':' // dynamic segment, e.g. :id
	RuneAsterisk = '*' // wildcard segment, e.g. *filepath

	FwdSlash = "/"
)
