package fixtures

import (
	"image/color"
	"time"

	"mediakit/exif"
	"mediakit/photo"
)

// Dimensions shared by every generated photo and clip.
const (
	imageWidth  = 640
	imageHeight = 480
)

// Photo describes one JPEG fixture: its gradient, its on-image label, and
// the metadata embedded in its EXIF segment. Width and Height are filled
// in at render time.
type Photo struct {
	Name    string
	From    color.RGBA
	To      color.RGBA
	Pattern photo.Pattern
	Meta    exif.Metadata
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

func ptr(v float64) *float64 { return &v }

func taken(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// Catalog returns the built-in photo set: five themed groups shot on five
// camera profiles, with GPS positions for everything except the studio
// macro set.
func Catalog() []Photo {
	return []Photo{
		// Paris vacation, blue and violet gradients.
		{
			Name: "paris_01.jpg", From: rgb(30, 30, 120), To: rgb(100, 60, 180), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Canon", Model: "Canon EOS R5", Lens: "RF 24-70mm F2.8L IS USM",
				FocalLength: 35, FNumber: 2.8, ExposureTime: 1.0 / 250, ISO: 200,
				DateTimeOriginal: taken(2024, time.June, 15, 10, 30),
				Lat:              ptr(48.8584), Lon: ptr(2.2945), Altitude: 35,
				Orientation: 1,
			},
		},
		{
			Name: "paris_02.jpg", From: rgb(40, 20, 140), To: rgb(120, 80, 200), Pattern: photo.PatternVertical,
			Meta: exif.Metadata{
				Make: "Canon", Model: "Canon EOS R5", Lens: "RF 24-70mm F2.8L IS USM",
				FocalLength: 50, FNumber: 4.0, ExposureTime: 1.0 / 500, ISO: 100,
				DateTimeOriginal: taken(2024, time.June, 15, 14, 45),
				Lat:              ptr(48.8606), Lon: ptr(2.3376), Altitude: 40,
				Orientation: 1,
			},
		},
		{
			Name: "paris_03.jpg", From: rgb(50, 30, 100), To: rgb(90, 50, 160), Pattern: photo.PatternDiagonal,
			Meta: exif.Metadata{
				Make: "Canon", Model: "Canon EOS R5", Lens: "RF 70-200mm F2.8L IS USM",
				FocalLength: 135, FNumber: 2.8, ExposureTime: 1.0 / 1000, ISO: 400,
				DateTimeOriginal: taken(2024, time.June, 16, 9, 15),
				Lat:              ptr(48.8530), Lon: ptr(2.3499), Altitude: 45,
				Orientation: 1,
			},
		},
		{
			Name: "paris_04.jpg", From: rgb(20, 10, 90), To: rgb(80, 40, 170), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Canon", Model: "Canon EOS R5", Lens: "RF 24-70mm F2.8L IS USM",
				FocalLength: 24, FNumber: 8.0, ExposureTime: 1.0 / 125, ISO: 100,
				DateTimeOriginal: taken(2024, time.June, 17, 18, 0),
				Lat:              ptr(48.8520), Lon: ptr(2.3510), Altitude: 30,
				Orientation: 1,
			},
		},
		{
			Name: "paris_05.jpg", From: rgb(60, 40, 150), To: rgb(140, 100, 220), Pattern: photo.PatternRadial,
			Meta: exif.Metadata{
				Make: "Canon", Model: "Canon EOS R5", Lens: "RF 24-70mm F2.8L IS USM",
				FocalLength: 70, FNumber: 5.6, ExposureTime: 1.0 / 60, ISO: 800, Flash: true,
				DateTimeOriginal: taken(2024, time.June, 17, 21, 30),
				Lat:              ptr(48.8566), Lon: ptr(2.3522), Altitude: 38,
				Orientation: 1,
			},
		},

		// Tokyo trip, red and orange gradients.
		{
			Name: "tokyo_01.jpg", From: rgb(180, 40, 20), To: rgb(220, 120, 30), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Sony", Model: "ILCE-7M4", Lens: "FE 24-105mm F4 G OSS",
				FocalLength: 24, FNumber: 4.0, ExposureTime: 1.0 / 500, ISO: 200,
				DateTimeOriginal: taken(2024, time.September, 3, 8, 0),
				Lat:              ptr(35.6762), Lon: ptr(139.6503), Altitude: 15,
				Orientation: 1,
			},
		},
		{
			Name: "tokyo_02.jpg", From: rgb(200, 60, 10), To: rgb(240, 140, 40), Pattern: photo.PatternVertical,
			Meta: exif.Metadata{
				Make: "Sony", Model: "ILCE-7M4", Lens: "FE 24-105mm F4 G OSS",
				FocalLength: 70, FNumber: 4.0, ExposureTime: 1.0 / 250, ISO: 400,
				DateTimeOriginal: taken(2024, time.September, 4, 12, 30),
				Lat:              ptr(35.7148), Lon: ptr(139.7967), Altitude: 20,
				Orientation: 1,
			},
		},
		{
			Name: "tokyo_03.jpg", From: rgb(160, 30, 30), To: rgb(200, 100, 20), Pattern: photo.PatternDiagonal,
			Meta: exif.Metadata{
				Make: "Sony", Model: "ILCE-7M4", Lens: "FE 85mm F1.4 GM",
				FocalLength: 85, FNumber: 1.4, ExposureTime: 1.0 / 2000, ISO: 100,
				DateTimeOriginal: taken(2024, time.September, 5, 17, 45),
				Lat:              ptr(35.6595), Lon: ptr(139.7004), Altitude: 10,
				Orientation: 6,
			},
		},
		{
			Name: "tokyo_04.jpg", From: rgb(190, 50, 15), To: rgb(230, 130, 50), Pattern: photo.PatternRadial,
			Meta: exif.Metadata{
				Make: "Sony", Model: "ILCE-7M4", Lens: "FE 24-105mm F4 G OSS",
				FocalLength: 105, FNumber: 5.6, ExposureTime: 1.0 / 30, ISO: 1600, Flash: true,
				DateTimeOriginal: taken(2024, time.September, 5, 22, 0),
				Lat:              ptr(35.6938), Lon: ptr(139.7035), Altitude: 5,
				Orientation: 1,
			},
		},

		// Nature hike, green gradients.
		{
			Name: "nature_01.jpg", From: rgb(20, 100, 30), To: rgb(60, 180, 60), Pattern: photo.PatternVertical,
			Meta: exif.Metadata{
				Make: "Nikon", Model: "NIKON Z 6III", Lens: "NIKKOR Z 24-120mm f/4 S",
				FocalLength: 24, FNumber: 8.0, ExposureTime: 1.0 / 250, ISO: 200,
				DateTimeOriginal: taken(2025, time.March, 10, 7, 30),
				Lat:              ptr(37.7456), Lon: ptr(-119.5936), Altitude: 1200,
				Orientation: 1,
			},
		},
		{
			Name: "nature_02.jpg", From: rgb(30, 120, 20), To: rgb(80, 200, 50), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Nikon", Model: "NIKON Z 6III", Lens: "NIKKOR Z 24-120mm f/4 S",
				FocalLength: 70, FNumber: 5.6, ExposureTime: 1.0 / 500, ISO: 100,
				DateTimeOriginal: taken(2025, time.March, 10, 10, 0),
				Lat:              ptr(37.7490), Lon: ptr(-119.5884), Altitude: 1350,
				Orientation: 1,
			},
		},
		{
			Name: "nature_03.jpg", From: rgb(10, 80, 40), To: rgb(50, 160, 70), Pattern: photo.PatternRadial,
			Meta: exif.Metadata{
				Make: "Nikon", Model: "NIKON Z 6III", Lens: "NIKKOR Z 100-400mm f/4.5-5.6 VR S",
				FocalLength: 300, FNumber: 5.6, ExposureTime: 1.0 / 1000, ISO: 800,
				DateTimeOriginal: taken(2025, time.March, 11, 15, 20),
				Lat:              ptr(37.7400), Lon: ptr(-119.6000), Altitude: 1100,
				Orientation: 1,
			},
		},
		{
			Name: "nature_04.jpg", From: rgb(40, 140, 25), To: rgb(90, 210, 55), Pattern: photo.PatternDiagonal,
			Meta: exif.Metadata{
				Make: "Nikon", Model: "NIKON Z 6III", Lens: "NIKKOR Z 24-120mm f/4 S",
				FocalLength: 50, FNumber: 4.0, ExposureTime: 1.0 / 125, ISO: 400,
				DateTimeOriginal: taken(2025, time.March, 11, 17, 45),
				Lat:              ptr(37.7420), Lon: ptr(-119.5950), Altitude: 1250,
				Orientation: 1,
			},
		},

		// Family portraits, warm tones.
		{
			Name: "family_01.jpg", From: rgb(200, 150, 100), To: rgb(240, 190, 140), Pattern: photo.PatternRadial,
			Meta: exif.Metadata{
				Make: "Apple", Model: "iPhone 15 Pro", Lens: "iPhone 15 Pro back triple camera 6.765mm f/1.78",
				FocalLength: 6.8, FNumber: 1.8, ExposureTime: 1.0 / 120, ISO: 50,
				DateTimeOriginal: taken(2025, time.January, 1, 12, 0),
				Lat:              ptr(40.7580), Lon: ptr(-73.9855), Altitude: 25,
				Orientation: 1,
			},
		},
		{
			Name: "family_02.jpg", From: rgb(210, 160, 110), To: rgb(245, 200, 150), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Apple", Model: "iPhone 15 Pro", Lens: "iPhone 15 Pro back triple camera 6.765mm f/1.78",
				FocalLength: 6.8, FNumber: 1.8, ExposureTime: 1.0 / 60, ISO: 200, Flash: true,
				DateTimeOriginal: taken(2025, time.January, 1, 19, 30),
				Lat:              ptr(40.7484), Lon: ptr(-73.9857), Altitude: 20,
				Orientation: 6,
			},
		},
		{
			Name: "family_03.jpg", From: rgb(190, 140, 90), To: rgb(235, 185, 130), Pattern: photo.PatternVertical,
			Meta: exif.Metadata{
				Make: "Apple", Model: "iPhone 15 Pro", Lens: "iPhone 15 Pro back triple camera 6.765mm f/1.78",
				FocalLength: 6.8, FNumber: 2.2, ExposureTime: 1.0 / 250, ISO: 64,
				DateTimeOriginal: taken(2025, time.January, 2, 10, 15),
				Lat:              ptr(40.6892), Lon: ptr(-74.0445), Altitude: 10,
				Orientation: 1,
			},
		},

		// Studio macro set, abstract patterns, no GPS.
		{
			Name: "macro_01.jpg", From: rgb(100, 20, 80), To: rgb(200, 60, 160), Pattern: photo.PatternRadial,
			Meta: exif.Metadata{
				Make: "Fujifilm", Model: "X-T5", Lens: "XF 80mm F2.8 R LM OIS WR Macro",
				FocalLength: 80, FNumber: 5.6, ExposureTime: 1.0 / 125, ISO: 400, Flash: true,
				DateTimeOriginal: taken(2023, time.November, 5, 14, 0),
				Orientation:      1,
			},
		},
		{
			Name: "macro_02.jpg", From: rgb(120, 30, 90), To: rgb(220, 80, 180), Pattern: photo.PatternDiagonal,
			Meta: exif.Metadata{
				Make: "Fujifilm", Model: "X-T5", Lens: "XF 80mm F2.8 R LM OIS WR Macro",
				FocalLength: 80, FNumber: 8.0, ExposureTime: 1.0 / 60, ISO: 200, Flash: true,
				DateTimeOriginal: taken(2023, time.November, 5, 15, 30),
				Orientation:      1,
			},
		},
		{
			Name: "macro_03.jpg", From: rgb(80, 10, 70), To: rgb(180, 50, 150), Pattern: photo.PatternHorizontal,
			Meta: exif.Metadata{
				Make: "Fujifilm", Model: "X-T5", Lens: "XF 80mm F2.8 R LM OIS WR Macro",
				FocalLength: 80, FNumber: 2.8, ExposureTime: 1.0 / 500, ISO: 800,
				DateTimeOriginal: taken(2023, time.November, 12, 10, 0),
				Orientation:      1,
			},
		},
		{
			Name: "macro_04.jpg", From: rgb(140, 40, 100), To: rgb(230, 90, 190), Pattern: photo.PatternVertical,
			Meta: exif.Metadata{
				Make: "Fujifilm", Model: "X-T5", Lens: "XF 80mm F2.8 R LM OIS WR Macro",
				FocalLength: 80, FNumber: 4.0, ExposureTime: 1.0 / 250, ISO: 320, Flash: true,
				DateTimeOriginal: taken(2023, time.November, 12, 11, 45),
				Orientation:      1,
			},
		},
	}
}
