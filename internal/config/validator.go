package config

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
	} else if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	if c.Domains == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "domains",
			Message:   "configuration must contain 'domains' section",
		})
	} else if err := validate.Struct(c.Domains); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "domains")...)
	}

	if c.IP == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "ip",
			Message:   "configuration must contain 'ip' section",
		})
	} else if err := validate.Struct(c.IP); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "ip")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}
