package uploader

// Screenshot payloads only. Telegram re-encodes photos to JPEG, but the
// allowlist keeps the door open for other image uploads.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

func IsValidContentType(ct string) bool {
	_, exist := allowedContentTypes[ct]
	return exist
}

// Ext returns the file extension for an allowed content type.
func Ext(ct string) (string, bool) {
	ext, ok := allowedContentTypes[ct]
	return ext, ok
}
