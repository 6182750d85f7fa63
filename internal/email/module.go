package email

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
