package acvm

// LanguageKind enumerates the supported NP-complete constraint languages.
type LanguageKind int

const (
	R1CS LanguageKind = iota + 1
	PLONKCSat
)

// Language declares a proof system's native constraint language. Width is the
// constraint fan-in and is meaningful only for PLONKCSat.
type Language struct {
	Kind  LanguageKind
	Width int
}
