package config

// SampleConfig returns a fully commented configuration file template.
func SampleConfig() string {
	return `# GradeLens configuration file
version: "1.0"

# Analyze service client settings
client:
  # URL of the grading service
  endpoint: "http://localhost:8000"
  # Request timeout. 0 disables the deadline; grading large documents can
  # take a while.
  timeout: 0s
  # Per-file upload cap in bytes (5 MiB)
  max_file_size: 5242880

# Output formatting
output:
  # terminal | json | markdown | csv
  default_format: "terminal"
  # auto | always | never
  color_mode: "auto"
  verbose: false
  no_emoji: false

# Built-in grading server (gradelens serve)
server:
  addr: ":8000"
  # Total request body cap; leaves headroom for two files at the per-file limit
  body_limit: "12M"
  enable_cors: true
  allow_origins:
    - "*"

# Grading engine thresholds
grading:
  # Similarity above which a requirement is fully met
  met_threshold: 0.85
  # Similarity above which a requirement is partially met
  partial_threshold: 0.65
  # Vocabulary size of the text vectorizer
  vector_dimensions: 512
`
}

// MinimalSampleConfig returns a compact configuration with only the settings
// most installations change.
func MinimalSampleConfig() string {
	return `version: "1.0"
client:
  endpoint: "http://localhost:8000"
output:
  default_format: "terminal"
server:
  addr: ":8000"
`
}
