package httpserver

type AddContactRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

type ChangePhoneRequest struct {
	OldPhone string `json:"old_phone" validate:"required,len=10,numeric"`
	NewPhone string `json:"new_phone" validate:"required,len=10,numeric"`
}

type SetBirthdayRequest struct {
	Birthday string `json:"birthday" validate:"required,datetime=02.01.2006"`
}
