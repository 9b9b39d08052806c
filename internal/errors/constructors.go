package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "site definition not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "site definition invalid").
		WithContext("path", path)
}

func ConfigExists(path string) *SiteError {
	return New(CategoryConfig, SeverityError, "site definition already exists (use --force to overwrite)").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Site model errors

func NavigationInvariant(rule string, links []string) *SiteError {
	return New(CategoryNavigation, SeverityFatal, "navigation invariant violated").
		WithContext("rule", rule).
		WithContext("links", links)
}

func MissingPages(links []string) *SiteError {
	return New(CategoryNavigation, SeverityError, "sidebar links without a page").
		WithContext("links", links)
}

func UnresolvedPlaceholder(tokens []string) *SiteError {
	return New(CategorySubstitution, SeverityFatal, "placeholder tokens left after substitution").
		WithContext("tokens", tokens)
}

// External system errors

func FileSystemError(operation string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation)
}

func GitError(repo string, cause error) *SiteError {
	return Wrap(cause, CategoryGit, SeverityFatal, "git repository read failed").
		WithContext("repository", repo)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
