package normalization

// FormatTag classifies a raw upstream payload into one of the known shapes.
type FormatTag int

const (
	// FormatUnknown means no normalizer applies; the pipeline yields an
	// empty series instead of an error.
	FormatUnknown FormatTag = iota
	// FormatArrayOfRecords is a flat array of objects with named time and
	// price fields.
	FormatArrayOfRecords
	// FormatLabelsDatasets is the legacy chart structure:
	// {data: {labels: [...], datasets: [{label, data: [...]}, ...]}}.
	FormatLabelsDatasets
	// FormatPredictionLabels is the prediction structure with parallel
	// {labels: [...], data: [...]} arrays.
	FormatPredictionLabels
)

func (t FormatTag) String() string {
	switch t {
	case FormatArrayOfRecords:
		return "array_of_records"
	case FormatLabelsDatasets:
		return "labels_datasets"
	case FormatPredictionLabels:
		return "prediction_labels"
	default:
		return "unknown"
	}
}

// timeKeys are the record field names recognized as a point timestamp, in
// lookup order.
var timeKeys = []string{"time", "timestamp", "date", "created_at"}

// Detect classifies a raw deserialized JSON payload. Pure, no side effects.
func Detect(payload interface{}) FormatTag {
	switch v := payload.(type) {
	case []interface{}:
		if len(v) == 0 {
			return FormatUnknown
		}
		first, ok := v[0].(map[string]interface{})
		if !ok {
			return FormatUnknown
		}
		if hasAnyKey(first, timeKeys) && hasPriceKey(first) {
			return FormatArrayOfRecords
		}
		return FormatUnknown
	case map[string]interface{}:
		if data, ok := v["data"].(map[string]interface{}); ok {
			_, hasLabels := data["labels"].([]interface{})
			_, hasDatasets := data["datasets"].([]interface{})
			if hasLabels && hasDatasets {
				return FormatLabelsDatasets
			}
		}
		_, hasLabels := v["labels"].([]interface{})
		_, hasData := v["data"].([]interface{})
		if hasLabels && hasData {
			return FormatPredictionLabels
		}
	}
	return FormatUnknown
}

func hasAnyKey(rec map[string]interface{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := rec[k]; ok {
			return true
		}
	}
	return false
}

func hasPriceKey(rec map[string]interface{}) bool {
	for _, k := range defaultPriceFields {
		if _, ok := rec[k]; ok {
			return true
		}
	}
	return false
}
