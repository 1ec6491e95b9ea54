package constvars

const (
	RegexDateYMD = `^\d{4}-\d{2}-\d{2}$`
	RegexPhone10 = `^\d{10}$`
	RegexZipCode = `^\d{5}(-\d{4})?$`
)
