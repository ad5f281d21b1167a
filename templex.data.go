package templex

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ParseData decodes context data. format is DataFormatJSON, which also
// accepts comments and trailing commas, or DataFormatYAML. The top level must
// be a mapping; empty input yields an empty map. JSON integers are kept as
// integers.
func ParseData(raw []byte, format string) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	switch format {
	case DataFormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil {
			return nil, NewDataError(ErrMsgDataParseFailed, format, err)
		}
	case DataFormatYAML:
		if err := yaml.Unmarshal(raw, &decoded); err != nil {
			return nil, NewDataError(ErrMsgDataParseFailed, format, err)
		}
	default:
		return nil, NewDataError(ErrMsgDataUnknownFormat, format, nil)
	}

	switch m := decoded.(type) {
	case map[string]any:
		return m, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, NewDataError(ErrMsgDataNotMapping, format, nil)
	}
}

// DataFormatForPath picks the data format from a file extension. Unknown
// extensions are treated as JSON.
func DataFormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case FileExtYAML, FileExtYML:
		return DataFormatYAML
	case FileExtJSON, FileExtJSONC:
		return DataFormatJSON
	default:
		return DataFormatJSON
	}
}

// LoadDataFile reads and decodes a context data file.
func LoadDataFile(path string) (map[string]any, error) {
	format := DataFormatForPath(path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDataError(ErrMsgDataReadFailed, format, err)
	}
	return ParseData(raw, format)
}
