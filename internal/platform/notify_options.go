package platform

// AppName identifies the application to the notification service.
const AppName = "Colorbook"

// Kind tells the notification service what happened to the picture.
type Kind string

const (
	KindSaved  Kind = "saved"
	KindCopied Kind = "copied"
)

// Options carries the optional parts of a desktop notification. Platforms
// ignore what they cannot show.
type Options struct {
	// IconPath names an image file shown next to the message.
	IconPath string
	// TimeoutMillis is how long the notification stays visible. Zero uses
	// the platform default.
	TimeoutMillis int32
	Kind          Kind
}

// subtitle is the short line shown under the title on platforms that have one.
func (o Options) subtitle() string {
	switch o.Kind {
	case KindSaved:
		return "Picture saved"
	case KindCopied:
		return "Picture copied"
	}
	return AppName
}
