package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-twitter-oauth/internal/errors"
)

// TweetPageData contains data for rendering the tweet form
type TweetPageData struct {
	AppName    string
	ScreenName string
	MaxLength  int
}

// TweetSentData contains data for the confirmation page. Text and CreatedAt
// come from the upstream echo, not the submitted form, so any normalisation
// Twitter applied is what gets shown.
type TweetSentData struct {
	AppName    string
	ScreenName string
	TweetID    string
	Text       string
	CreatedAt  string
}

// TweetPageHandler renders the authenticated tweet form
func (s *Server) TweetPageHandler() http.HandlerFunc {
	tweetTmpl := mustParseTemplate("tweet.html")

	return func(w http.ResponseWriter, r *http.Request) {
		state := s.sessions.Load(r)

		data := TweetPageData{
			AppName:    s.config.GetAppName(),
			ScreenName: state.Auth.User.ScreenName,
			MaxLength:  MaxStatusLength,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tweetTmpl.Execute(w, data)
	}
}

// TweetSubmitHandler posts a status update on behalf of the logged-in user.
// Accepts form-encoded and JSON bodies. Validation happens before the signed
// upstream call; an upstream failure changes no session state.
func (s *Server) TweetSubmitHandler() http.HandlerFunc {
	sentTmpl := mustParseTemplate("tweet_sent.html")

	return func(w http.ResponseWriter, r *http.Request) {
		status, err := statusFromRequest(r)
		if err != nil {
			s.renderError(w, http.StatusBadRequest, "Invalid tweet", "Could not read the tweet text from the request.")
			return
		}

		status, err = ValidateStatus(status)
		if err != nil {
			switch {
			case errors.Is(err, errors.ErrEmptyStatus):
				s.renderError(w, http.StatusBadRequest, "Invalid tweet", "The tweet cannot be empty.")
			case errors.Is(err, errors.ErrStatusTooLong):
				s.renderError(w, http.StatusBadRequest, "Invalid tweet", "The tweet exceeds 280 characters.")
			default:
				s.renderError(w, http.StatusBadRequest, "Invalid tweet", err.Error())
			}
			return
		}

		state := s.sessions.Load(r)
		client := s.newClient(s.callbackURL(r))

		tweet, err := client.UpdateStatus(r.Context(), state.Auth.AccessToken, state.Auth.AccessTokenSecret, status)
		if err != nil {
			log.Err(err).Msg("Failed to post tweet")
			s.renderError(w, http.StatusInternalServerError, "Tweet failed",
				"Could not post your tweet. Please try again.")
			return
		}

		log.Info().Str("tweet_id", tweet.ID).Msg("Tweet posted")
		data := TweetSentData{
			AppName:    s.config.GetAppName(),
			ScreenName: state.Auth.User.ScreenName,
			TweetID:    tweet.ID,
			Text:       tweet.Text,
			CreatedAt:  tweet.CreatedAt,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = sentTmpl.Execute(w, data)
	}
}

func statusFromRequest(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", errors.Wrapf(err, "decode json body")
		}
		return body.Status, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", errors.Wrapf(err, "parse form")
	}
	return r.FormValue("status"), nil
}
