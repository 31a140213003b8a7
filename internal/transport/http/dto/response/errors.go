package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrUserAlreadyExists = ErrorResponse{
		Status:  "error",
		Error:   "user_already_exists",
		Details: "User with this email already exists",
	}

	ErrGalleryNotFound = ErrorResponse{
		Status:  "error",
		Error:   "gallery_not_found",
		Details: "Gallery with this id does not exist",
	}

	ErrUserNotFound = ErrorResponse{
		Status:  "error",
		Error:   "user_not_found",
		Details: "User with this id does not exist",
	}

	ErrOwnerNotFound = ErrorResponse{
		Status:  "error",
		Error:   "owner_not_found",
		Details: "Owner with this id does not exist",
	}

	ErrFileRequired = ErrorResponse{
		Status:  "error",
		Error:   "file_required",
		Details: "File is required",
	}

	ErrFileTooLarge = ErrorResponse{
		Status:  "error",
		Error:   "file_too_large",
		Details: "File exceeds the maximum allowed size",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
