package message

const (
	InvalidInput   = "Invalid input."
	UnknownField   = "Unknown field in payload."
	ServerError    = "An unexpected error occurred."
	RequestTimeout = "Request cancelled or timeout."
	TooManyReqs    = "Too many requests."
	UserCreated    = "User created."
	UserSaved      = "User saved."
	UsersSaved     = "Users saved."
	EmptyUserName  = "Username must not be empty."
	Healthy        = "Service is healthy."
	StoreDown      = "Store is unavailable."
)
