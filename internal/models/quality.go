package models

import "strings"

// Quality represents the vertical resolution class of a media source
type Quality int

const (
	QualityUnknown Quality = iota
	Quality360p
	Quality480p
	Quality720p
	Quality1080p
	Quality2160p // 4K
)

// String returns the string representation of the quality
func (q Quality) String() string {
	switch q {
	case Quality360p:
		return "360p"
	case Quality480p:
		return "480p"
	case Quality720p:
		return "720p"
	case Quality1080p:
		return "1080p"
	case Quality2160p:
		return "2160p"
	default:
		return "unknown"
	}
}

// ParseQuality converts a quality string to Quality enum
func ParseQuality(qualityStr string) Quality {
	switch strings.ToLower(qualityStr) {
	case "360p":
		return Quality360p
	case "480p":
		return Quality480p
	case "720p":
		return Quality720p
	case "1080p":
		return Quality1080p
	case "2160p":
		return Quality2160p
	default:
		return QualityUnknown
	}
}

// QualityFromHeight classifies a video stream by its pixel height. Each
// class starts partway below its nominal line, above the class below it,
// so lightly cropped encodes keep their class.
func QualityFromHeight(height int) Quality {
	switch {
	case height >= 1620:
		return Quality2160p
	case height >= 810:
		return Quality1080p
	case height >= 600:
		return Quality720p
	case height >= 400:
		return Quality480p
	case height >= 270:
		return Quality360p
	default:
		return QualityUnknown
	}
}

// qualityFromWidth classifies by frame width, which scope encodes keep even
// when their height is heavily cropped (1920x800, 1280x536).
func qualityFromWidth(width int) Quality {
	switch {
	case width >= 3200:
		return Quality2160p
	case width >= 1600:
		return Quality1080p
	case width >= 1200:
		return Quality720p
	default:
		return QualityUnknown
	}
}

// QualityOf returns the best quality among the video streams, judging each
// stream by the higher of its height and width class
func QualityOf(streams []MediaStream) Quality {
	best := QualityUnknown
	for _, s := range streams {
		if s.Type != "Video" {
			continue
		}
		q := max(QualityFromHeight(s.Height), qualityFromWidth(s.Width))
		if q > best {
			best = q
		}
	}
	return best
}

// MarshalJSON implements json.Marshaler interface
func (q Quality) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (q *Quality) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	*q = ParseQuality(str)
	return nil
}
