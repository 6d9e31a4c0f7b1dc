package validate

import "strings"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// RegistrationFields lists the registration keys in the order they are
// reported when missing.
var RegistrationFields = []string{"first_name", "last_name", "email", "password"}

// Registration validates a registration payload. Missing fields are reported
// together in a message starting with "Missing"; other failures report the
// first problem found.
func Registration(p Payload) Result {
	var missing []string
	for _, key := range RegistrationFields {
		if lookup(p, key).blank() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fail("Missing required fields: %s", strings.Join(missing, ", "))
	}

	for _, key := range RegistrationFields {
		if !lookup(p, key).isStr {
			return fail("Invalid value for %s. Should be a string", key)
		}
	}

	email := strings.TrimSpace(lookup(p, "email").value)
	if err := checker.Var(email, "required,email"); err != nil {
		return fail("Invalid email address %s.", email)
	}

	if len(lookup(p, "password").value) > MaxPasswordBytes {
		return fail("Password cannot be longer than %d bytes.", MaxPasswordBytes)
	}

	return pass("Registration details are valid.")
}
