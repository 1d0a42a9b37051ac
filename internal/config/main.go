package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Midi    = kingpin.Flag("midi", "MIDI note source, a path or URL").Short('m').String()
	Audio   = kingpin.Flag("audio", "Audio track, a path or URL").Short('a').String()
	Record  = kingpin.Flag("record", "Load a stored game record by id").Short('r').Int64()
	Upload  = kingpin.Flag("upload", "Store the audio and midi as a new record, then exit").Bool()
	Offset  = kingpin.Flag("offset", "Global judge offset").Default("0ms").Short('o').Duration()
	DSN     = kingpin.Flag("dsn", "Record database DSN").Default("./arrowfall.db").String()
	Bucket  = kingpin.Flag("bucket", "Media bucket directory").Default("./bucket").String()
	Verbose = kingpin.Flag("verbose", "Enable debug logging").Short('v').Bool()
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
