package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/logilink/logilink-client/models"
)

func (s *Server) checkMobile(w http.ResponseWriter, r *http.Request) {
	var req models.CheckMobileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, exists := s.usersByPhone[req.MobileNumber]
	s.mu.Unlock()

	writeJSON(w, models.CheckMobileResponse{Exists: exists}, http.StatusOK)
}

func (s *Server) sendOTP(w http.ResponseWriter, r *http.Request) {
	var req models.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByPhone[req.MobileNumber]; !exists {
		// 2xx with an unconfirmed delivery: the client treats this as a
		// failed send
		writeJSON(w, models.SendOTPResponse{
			Delivered: false,
			Message:   "mobile number is not registered",
		}, http.StatusOK)
		return
	}

	// a fresh code replaces any outstanding one for the same phone
	s.otpSeq++
	code := fmt.Sprintf("%04d", s.otpSeq%10000)
	s.otps[req.MobileNumber] = code

	writeJSON(w, models.SendOTPResponse{
		Delivered: true,
		Message:   "otp sent",
		Code:      code,
	}, http.StatusOK)
}

func (s *Server) loginOTP(w http.ResponseWriter, r *http.Request) {
	var req models.LoginOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.usersByPhone[req.MobileNumber]
	code, outstanding := s.otps[req.MobileNumber]
	if !exists || !outstanding || code != req.OTP {
		writeJSON(w, models.LoginOTPResponse{
			Success: false,
			Message: "invalid otp",
		}, http.StatusOK)
		return
	}

	// the challenge is single-use
	delete(s.otps, req.MobileNumber)

	token, err := generateJWTToken(s.cfg.TokenIssuer, user.UserID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.LoginOTPResponse{
		Success:      true,
		Message:      "login successful",
		User:         user,
		Token:        token.SignedString,
		RefreshToken: uuid.NewString(),
	}, http.StatusOK)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var form models.RegistrationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if form.MobileNumber == "" {
		http.Error(w, "mobile number is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByPhone[form.MobileNumber]; exists {
		http.Error(w, "mobile number already registered", http.StatusConflict)
		return
	}

	user := models.User{
		UserID:       s.allocID(),
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		MobileNumber: form.MobileNumber,
		Email:        form.Email,
		Address:      form.Address,
		City:         form.City,
		State:        form.State,
		Pincode:      form.Pincode,
		Gender:       form.Gender,
		DateOfBirth:  form.DateOfBirth,
		GovernmentID: form.GovernmentID,
		RoleID:       form.RoleID,
		CreatedAt:    time.Now(),
	}
	s.usersByPhone[form.MobileNumber] = user

	writeJSON(w, user, http.StatusOK)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var incoming models.User
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID := authedUserID(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()

	for phone, user := range s.usersByPhone {
		if user.UserID != userID {
			continue
		}

		// non-zero incoming fields win; identity fields stay server-owned
		incoming.UserID = 0
		incoming.MobileNumber = ""
		if err := mergo.Merge(&user, incoming, mergo.WithOverride); err != nil {
			s.logger.Err(err).Msg("profile merge failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		s.usersByPhone[phone] = user
		writeJSON(w, user, http.StatusOK)
		return
	}

	http.Error(w, "user not found", http.StatusNotFound)
}
