package http

var (
	ExtractMetaMessages  = extractMetaMessages
	ExtractSlackMessages = extractSlackMessages
	VerifySlackSignature = verifySlackSignature
)

type MetaEvent = metaEvent
