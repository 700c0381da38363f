package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"addressbook/contact"
	"addressbook/errs"
)

// congratulationDateLayout is the wire form of congratulation dates.
const congratulationDateLayout = "2006-01-02"

func (s *Server) RegisterContactRoutes(g *echo.Group) {
	g.GET("/contacts", s.handleListContacts)
	g.POST("/contacts", s.handleAddContact)
	g.GET("/contacts/:name", s.handleGetContact)
	g.DELETE("/contacts/:name", s.handleDeleteContact)
	g.GET("/contacts/:name/phones", s.handleContactPhones)
	g.PUT("/contacts/:name/phones", s.handleChangePhone)
	g.DELETE("/contacts/:name/phones/:phone", s.handleRemovePhone)
	g.PUT("/contacts/:name/birthday", s.handleSetBirthday)
	g.GET("/contacts/:name/birthday", s.handleShowBirthday)
}

func (s *Server) RegisterBirthdayRoutes(g *echo.Group) {
	g.GET("/birthdays/upcoming", s.handleUpcomingBirthdays)
}

type ContactResponse struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

type CongratulationResponse struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

func toContactResponse(r contact.Record) ContactResponse {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	return ContactResponse{
		Name:     r.Name.String(),
		Phones:   phones,
		Birthday: r.Birthday.String(),
	}
}

func (s *Server) handleAddContact(c echo.Context) error {
	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := s.ContactService.AddContact(c.Request().Context(), req.Name, req.Phone)
	if err != nil {
		return err
	}

	status := "updated"
	if created {
		status = "created"
	}
	return writeSuccess(c, http.StatusCreated, map[string]string{"status": status})
}

func (s *Server) handleListContacts(c echo.Context) error {
	records, err := s.ContactService.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	contacts := make([]ContactResponse, len(records))
	for i, r := range records {
		contacts[i] = toContactResponse(r)
	}
	return writeList(c, http.StatusOK, contacts)
}

func (s *Server) handleGetContact(c echo.Context) error {
	rec, err := s.ContactService.GetContact(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, toContactResponse(rec))
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	if err := s.ContactService.DeleteContact(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleContactPhones(c echo.Context) error {
	phones, err := s.ContactService.ContactPhones(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return writeList(c, http.StatusOK, values)
}

func (s *Server) handleChangePhone(c echo.Context) error {
	var req ChangePhoneRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err := s.ContactService.ChangePhone(c.Request().Context(), c.Param("name"), req.OldPhone, req.NewPhone)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleRemovePhone(c echo.Context) error {
	err := s.ContactService.RemovePhone(c.Request().Context(), c.Param("name"), c.Param("phone"))
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleSetBirthday(c echo.Context) error {
	var req SetBirthdayRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err := s.ContactService.SetBirthday(c.Request().Context(), c.Param("name"), req.Birthday)
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleShowBirthday(c echo.Context) error {
	b, err := s.ContactService.ShowBirthday(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return writeSuccess(c, http.StatusOK, map[string]string{"birthday": b.String()})
}

func (s *Server) handleUpcomingBirthdays(c echo.Context) error {
	ref := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(congratulationDateLayout, raw)
		if err != nil {
			return errs.Errorf(errs.EINVALID, "invalid date, use YYYY-MM-DD")
		}
		ref = parsed
	}

	items, err := s.ContactService.UpcomingBirthdays(c.Request().Context(), ref)
	if err != nil {
		return err
	}

	result := make([]CongratulationResponse, len(items))
	for i, item := range items {
		result[i] = CongratulationResponse{
			Name:               item.Name,
			CongratulationDate: item.Date.Format(congratulationDateLayout),
		}
	}
	return writeList(c, http.StatusOK, result)
}
