package emit

// Compile-time interface conformance checks.
var (
	_ Emitter = (*NullEmitter)(nil)
	_ Emitter = (*LogEmitter)(nil)
	_ Emitter = (*OTelEmitter)(nil)
	_ Emitter = (*BufferedEmitter)(nil)
)
