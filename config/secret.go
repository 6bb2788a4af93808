package config

// SecretMask replaces secret values in dumps and logs.
const SecretMask = "<secret>"

// SecretString holds credentials which must never leave the program through
// configuration dumps, debug reports or logs.
type SecretString string

// MarshalYAML hides the value, empty secret is dumped as null.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretMask, nil
}

func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretMask
}

// Reveal returns actual value for the code which has to check it.
func (s SecretString) Reveal() string {
	return string(s)
}
