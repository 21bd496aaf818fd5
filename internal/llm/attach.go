package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

// ShouldAttachImage decides whether the original stub photo rides along with
// the vision request: only when the transcript confidence is low, the source
// is an attachable photo format, and the file fits under the size gate.
func ShouldAttachImage(req ExtractRequest) (attach bool, dataURL, mimeType string) {
	attach = req.FilePath != "" &&
		constants.IsImageExt(filepath.Ext(req.FilePath)) &&
		req.PrepConfidence < constants.ImageConfidenceThreshold

	if !attach {
		return false, "", ""
	}

	if st, err := os.Stat(req.FilePath); err != nil || st.IsDir() ||
		st.Size() > int64(constants.MaxVisionMBDefault)*1024*1024 {
		return false, "", ""
	}

	u, mt, err := readAsDataURL(req.FilePath)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
