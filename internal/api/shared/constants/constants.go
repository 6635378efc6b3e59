package constants

const (
	DEFAULT_OFFSET              = uint64(0)
	DEFAULT_CAPSULES_LIMIT      = 20
	DEFAULT_VERIFICATIONS_LIMIT = 20
	MAX_PAGE_SIZE               = 100

	// MAX_CONTENT_BYTES caps inline content submissions. Pinata's free tier
	// rejects larger payloads anyway.
	MAX_CONTENT_BYTES = 10 << 20

	MAX_DESCRIPTION_LENGTH = 2000
	MAX_LOCATION_LENGTH    = 500
	MAX_NOTES_LENGTH       = 2000
)
