package fetcher

import "fmt"

// Manifest is the ordered list of filenames to fetch from the model repository.
type Manifest []string

// DefaultManifest holds the files the ONNX runtime needs to run the model in a browser.
// Encoder and decoder are the int8 quantized variants.
var DefaultManifest = Manifest{
	"config.json",
	"generation_config.json",
	"preprocessor_config.json",
	"tokenizer.json",
	"tokenizer_config.json",
	"vocab.json",
	"special_tokens_map.json",
	"encoder_model_quantized.onnx",
	"decoder_model_merged_quantized.onnx",
}

// Validate checks every entry with ValidateFilename.
func (m Manifest) Validate() error {
	for i, name := range m {
		if err := ValidateFilename(name); err != nil {
			return fmt.Errorf("%w: bad manifest entry(index=%d)", err, i)
		}
	}

	return nil
}
