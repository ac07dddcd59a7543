// Package qrcode renders PNG QR codes with medium error correction.
//
//	png, err := qrcode.Generate("https://example.com", 256)
//
//	uri, err := qrcode.GenerateBase64Image("https://example.com", 256)
//	fmt.Printf(`<img src="%s" alt="QR code">`, uri)
//
// The portfolio serves one for its public URL at /qr.png and the CLI can
// write it to a file.
package qrcode
