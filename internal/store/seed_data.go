package store

import "github.com/couchcryptid/pothole-dashboard/internal/domain"

// seedRows is the fixed example dataset written by SeedIfEmpty: one survey
// flight near Kolkata on 2026-02-17. Several frames were captured
// twice, so ids differ while timestamps repeat.
var seedRows = []domain.Detection{
	{ID: "DATA1", ImageName: "Screenshot 2026-02-17 070839.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0002, B: 0.0089, C: 0.9908}, CapturedAt: "2026-02-17 07:08:39", Latitude: 22.620917, Longitude: 88.427489},
	{ID: "DATA2", ImageName: "Screenshot 2026-02-17 071215.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0122, B: 0.8589, C: 0.1288}, CapturedAt: "2026-02-17 07:12:15", Latitude: 22.630922, Longitude: 88.427100},
	{ID: "DATA3", ImageName: "Screenshot 2026-02-17 071542.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9502, B: 0.0389, C: 0.0108}, CapturedAt: "2026-02-17 07:15:42", Latitude: 22.641022, Longitude: 88.426794},
	{ID: "DATA4", ImageName: "Screenshot 2026-02-17 072011.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0005, B: 0.0120, C: 0.9875}, CapturedAt: "2026-02-17 07:20:11", Latitude: 22.620717, Longitude: 88.426264},
	{ID: "DATA5", ImageName: "Screenshot 2026-02-17 072533.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0500, B: 0.7500, C: 0.2000}, CapturedAt: "2026-02-17 07:25:33", Latitude: 22.620667, Longitude: 88.425797},
	{ID: "DATA6", ImageName: "Screenshot 2026-02-17 073000.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9800, B: 0.0100, C: 0.0100}, CapturedAt: "2026-02-17 07:30:00", Latitude: 22.620319, Longitude: 88.425283},
	{ID: "DATA7", ImageName: "Screenshot 2026-02-17 070839.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0002, B: 0.0089, C: 0.9908}, CapturedAt: "2026-02-17 07:08:39", Latitude: 22.619903, Longitude: 88.424697},
	{ID: "DATA8", ImageName: "Screenshot 2026-02-17 071215.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0122, B: 0.8589, C: 0.1288}, CapturedAt: "2026-02-17 07:12:15", Latitude: 22.620917, Longitude: 88.427489},
	{ID: "DATA9", ImageName: "Screenshot 2026-02-17 071542.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9502, B: 0.0389, C: 0.0108}, CapturedAt: "2026-02-17 07:15:42", Latitude: 22.620922, Longitude: 88.427100},
	{ID: "DATA10", ImageName: "Screenshot 2026-02-17 072011.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0005, B: 0.0120, C: 0.9875}, CapturedAt: "2026-02-17 07:20:11", Latitude: 22.621022, Longitude: 88.426794},
	{ID: "DATA11", ImageName: "Screenshot 2026-02-17 072533.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0500, B: 0.7500, C: 0.2000}, CapturedAt: "2026-02-17 07:25:33", Latitude: 22.620717, Longitude: 88.426264},
	{ID: "DATA12", ImageName: "Screenshot 2026-02-17 073000.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9800, B: 0.0100, C: 0.0100}, CapturedAt: "2026-02-17 07:30:00", Latitude: 22.620667, Longitude: 88.425797},
	{ID: "DATA13", ImageName: "Screenshot 2026-02-17 073512.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0001, B: 0.0050, C: 0.9949}, CapturedAt: "2026-02-17 07:35:12", Latitude: 22.620319, Longitude: 88.425283},
	{ID: "DATA14", ImageName: "Screenshot 2026-02-17 074025.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0200, B: 0.8800, C: 0.1000}, CapturedAt: "2026-02-17 07:40:25", Latitude: 22.619903, Longitude: 88.424697},
	{ID: "DATA15", ImageName: "Screenshot 2026-02-17 074538.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9700, B: 0.0200, C: 0.0100}, CapturedAt: "2026-02-17 07:45:38", Latitude: 22.620917, Longitude: 88.427489},
	{ID: "DATA16", ImageName: "Screenshot 2026-02-17 075051.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0003, B: 0.0100, C: 0.9897}, CapturedAt: "2026-02-17 07:50:51", Latitude: 22.620922, Longitude: 88.427100},
	{ID: "DATA17", ImageName: "Screenshot 2026-02-17 075504.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0300, B: 0.8200, C: 0.1500}, CapturedAt: "2026-02-17 07:55:04", Latitude: 22.621022, Longitude: 88.426794},
	{ID: "DATA18", ImageName: "Screenshot 2026-02-17 080017.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9900, B: 0.0050, C: 0.0050}, CapturedAt: "2026-02-17 08:00:17", Latitude: 22.620717, Longitude: 88.426264},
	{ID: "DATA19", ImageName: "Screenshot 2026-02-17 080530.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0001, B: 0.0020, C: 0.9979}, CapturedAt: "2026-02-17 08:05:30", Latitude: 22.620667, Longitude: 88.425797},
	{ID: "DATA20", ImageName: "Screenshot 2026-02-17 081043.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0100, B: 0.9500, C: 0.0400}, CapturedAt: "2026-02-17 08:10:43", Latitude: 22.620319, Longitude: 88.425283},
	{ID: "DATA21", ImageName: "Screenshot 2026-02-17 081556.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9600, B: 0.0300, C: 0.0100}, CapturedAt: "2026-02-17 08:15:56", Latitude: 22.619903, Longitude: 88.424697},
	{ID: "DATA22", ImageName: "Screenshot 2026-02-17 082009.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0002, B: 0.0040, C: 0.9958}, CapturedAt: "2026-02-17 08:20:09", Latitude: 22.620917, Longitude: 88.427489},
	{ID: "DATA23", ImageName: "Screenshot 2026-02-17 082522.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0400, B: 0.8600, C: 0.1000}, CapturedAt: "2026-02-17 08:25:22", Latitude: 22.620922, Longitude: 88.427100},
	{ID: "DATA24", ImageName: "Screenshot 2026-02-17 083035.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9850, B: 0.0100, C: 0.0050}, CapturedAt: "2026-02-17 08:30:35", Latitude: 22.621022, Longitude: 88.426794},
	{ID: "DATA25", ImageName: "Screenshot 2026-02-17 083548.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0001, B: 0.0030, C: 0.9969}, CapturedAt: "2026-02-17 08:35:48", Latitude: 22.620717, Longitude: 88.426264},
	{ID: "DATA26", ImageName: "Screenshot 2026-02-17 084001.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0150, B: 0.9200, C: 0.0650}, CapturedAt: "2026-02-17 08:40:01", Latitude: 22.620667, Longitude: 88.425797},
	{ID: "DATA27", ImageName: "Screenshot 2026-02-17 084514.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9950, B: 0.0030, C: 0.0020}, CapturedAt: "2026-02-17 08:45:14", Latitude: 22.620319, Longitude: 88.425283},
	{ID: "DATA28", ImageName: "Screenshot 2026-02-17 085027.png", HazardDetected: true, Category: domain.CategoryLarge, Confidence: domain.Confidence{A: 0.0004, B: 0.0080, C: 0.9916}, CapturedAt: "2026-02-17 08:50:27", Latitude: 22.619903, Longitude: 88.424697},
	{ID: "DATA29", ImageName: "Screenshot 2026-02-17 085540.png", HazardDetected: true, Category: domain.CategoryMedium, Confidence: domain.Confidence{A: 0.0250, B: 0.7800, C: 0.1950}, CapturedAt: "2026-02-17 08:55:40", Latitude: 22.620917, Longitude: 88.427489},
	{ID: "DATA30", ImageName: "Screenshot 2026-02-17 090053.png", HazardDetected: false, Category: domain.CategorySmall, Confidence: domain.Confidence{A: 0.9800, B: 0.0150, C: 0.0050}, CapturedAt: "2026-02-17 09:00:53", Latitude: 22.620922, Longitude: 88.427100},
}

// SeedRows returns a copy of the example dataset.
func SeedRows() []domain.Detection {
	out := make([]domain.Detection, len(seedRows))
	copy(out, seedRows)
	return out
}
