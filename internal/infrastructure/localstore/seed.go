package localstore

import (
	"time"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Catálogo semilla de equipos de ensayo y medición industrial. Se usa en el
// primer arranque y como estado de recuperación cuando un blob persistido no
// parsea.

// SeedCategories devuelve las categorías iniciales.
func SeedCategories() []*entity.Category {
	return []*entity.Category{
		{ID: 1, Name: "Material Testing Machines"},
		{ID: 2, Name: "Calibration Equipment"},
		{ID: 3, Name: "Measurement Tools"},
		{ID: 4, Name: "Quality Control Systems"},
		{ID: 5, Name: "Industrial Testing Equipment"},
	}
}

// SeedProducts devuelve los productos iniciales, todos publicados y con una
// imagen placeholder principal.
func SeedProducts() []*entity.Product {
	now := time.Now()
	seed := func(id int64, name, description string, categoryID int64, price int64, stock int, sku string, specs map[string]string, features []string) *entity.Product {
		return &entity.Product{
			ID:             id,
			Name:           name,
			Description:    description,
			CategoryID:     categoryID,
			SKU:            sku,
			Price:          decimal.NewFromInt(price),
			Stock:          stock,
			Specifications: specs,
			Features:       features,
			Images:         []entity.ProductImage{{ID: id, URL: "/images/placeholder.jpg", IsMain: true}},
			IsPublished:    true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}
	return []*entity.Product{
		seed(1, "Universal Testing Machine (UTM)",
			"High-precision material testing machine for tensile, compression, and flexural testing",
			1, 850000, 5, "UTM-1000",
			map[string]string{"Capacity": "1000 kN", "Accuracy": "±0.5%", "Test Speed": "0.001-500 mm/min"},
			[]string{"Digital control system", "Multiple test modes", "Data acquisition software", "Safety interlocks"}),
		seed(2, "Hardness Tester",
			"Digital hardness testing machine with multiple scales (Rockwell, Brinell, Vickers)",
			1, 450000, 8, "HT-2000",
			map[string]string{"Scales": "Rockwell, Brinell, Vickers", "Load Range": "1-3000 kgf", "Resolution": "0.1 HRC"},
			[]string{"Touch screen interface", "Automatic test cycle", "Built-in printer", "Data export capability"}),
		seed(3, "Pressure Calibrator",
			"High-accuracy pressure calibration system for industrial applications",
			2, 350000, 6, "PC-5000",
			map[string]string{"Range": "0-5000 psi", "Accuracy": "±0.05%", "Resolution": "0.01 psi"},
			[]string{"Digital display", "Multiple pressure units", "Data logging", "Battery powered"}),
		seed(4, "Digital Micrometer",
			"High-precision digital micrometer for accurate measurements",
			3, 15000, 20, "DM-100",
			map[string]string{"Range": "0-25mm", "Resolution": "0.001mm", "Accuracy": "±0.002mm"},
			[]string{"Digital display", "Zero setting", "Data output", "IP54 protection"}),
		seed(5, "Spectrometer",
			"Optical emission spectrometer for material analysis",
			4, 1800000, 3, "SPEC-1000",
			map[string]string{"Elements": "20+ elements", "Detection Limits": "ppm level", "Analysis Time": "<30 seconds"},
			[]string{"Multi-element analysis", "Automated operation", "Database system", "Remote control"}),
		seed(6, "Vibration Analyzer",
			"Portable vibration measurement and analysis system",
			5, 350000, 6, "VA-300",
			map[string]string{"Frequency Range": "0.1-20kHz", "Channels": "2", "Resolution": "3200 lines"},
			[]string{"FFT analysis", "Time waveform", "Data recording", "Battery powered"}),
	}
}
