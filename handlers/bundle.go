package handlers

// HandlerBundle groups the gateway handlers so route registration can
// take a single dependency.
type HandlerBundle struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Wizard  *WizardHandler
	User    *UserHandler
	Chat    *ChatHandler
	Admin   *AdminHandler
}
