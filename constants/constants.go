package constants

// Pricing rates applied to every order.
const (
	TaxRate           = 0.08
	ServiceChargeRate = 0.15
)

// API response messages
const (
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE       = "Account is deactivated"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"

	EMPTY_CART              = "Cart is empty"
	MISSING_REQUIRED_FIELD  = "Missing required field"
	MENU_ITEM_NOT_FOUND     = "Menu item not found"
	MENU_ITEM_UNAVAILABLE   = "Menu item is currently unavailable"
	ORDER_NOT_FOUND         = "Order not found"
	ILLEGAL_TRANSITION      = "Status transition is not allowed"
	INVALID_ORDER_STATUS    = "Unknown order status"
	SUBMISSION_IN_PROGRESS  = "An order submission is already in progress"
	PERSISTENCE_ERROR       = "Failed to persist changes, please try again"
	CART_UNAVAILABLE        = "Cart storage is unavailable"
)
