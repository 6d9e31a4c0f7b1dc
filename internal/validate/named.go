package validate

// Success messages returned when a create payload is valid.
const (
	BucketListCreated = "Bucketlist created successfully."
	ItemCreated       = "Item created successfully."
)

// BucketList validates a bucketlist create or update payload.
func BucketList(p Payload) Result {
	return name(p, "bucketlist", BucketListCreated)
}

// Item validates a bucketlist item create or update payload.
func Item(p Payload) Result {
	return name(p, "item", ItemCreated)
}

func name(p Payload, kind, success string) Result {
	f := lookup(p, "name")
	switch {
	case !f.present:
		return fail("Missing required field: name")
	case !f.isStr:
		return fail("Invalid value for name. Should be a string")
	case f.blank():
		return fail("The %s name cannot be empty.", kind)
	}
	return pass(success)
}
