// Package attach prepares encoded Telegram payloads for an upload layer.
//
// Telegram accepts a file either as a string (file_id or URL) or as a
// multipart part. Extract walks a payload produced by tg.Encode, turns file
// references into strings and pulls local streams out as parts:
//
//   - a top-level file field becomes a part named after the field
//   - a nested file (InputMedia.media, InputSticker.sticker, thumbnails)
//     becomes the string "attach://fileN" and a part named fileN
//
// Every other parameter is string-encoded the way the Bot API expects form
// fields: scalars verbatim, objects and arrays as JSON.
//
// # Usage
//
//	req, err := attach.Encode(tg.NewInputMediaPhoto(tg.FromBytes(img, "cat.jpg")))
//	if err != nil {
//	    return err
//	}
//	for _, part := range req.Files {
//	    // write part.Reader as form file part.FieldName
//	}
//
// Writing the multipart body and sending it is left to the caller.
package attach
