package thinkific

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/course-tools/thinkific-downloader/internal/thinkific/response"
)

const (
	// CoursePlayerLessonPath per-lesson detail endpoint, keyed by contentable id
	CoursePlayerLessonPath = "/api/course_player/v2/lessons/%d"
	// CoursePlayerQuizPath per-quiz detail endpoint, keyed by quiz id
	CoursePlayerQuizPath = "/api/course_player/v2/quizzes/%d"

	// AcceptHeaderValue mimics the course player XHR requests
	AcceptHeaderValue = "application/json, text/javascript, */*; q=0.01"
)

// A Client manages communication with the Thinkific course player API.
// All requests carry the session cookie header supplied at construction.
type Client struct {
	HTTPClient *resty.Client
	BaseURL    string

	log *logrus.Logger
}

// NewClient returns a new course player API client. The base URL is derived
// from the course link host; httpClient supplies the retrying transport.
func NewClient(httpClient *resty.Client, courseLink, cookieHeader, dateHeader string, log *logrus.Logger) (*Client, error) {
	u, err := url.Parse(courseLink)
	if err != nil {
		return nil, fmt.Errorf("invalid course link %q: %w", courseLink, err)
	}

	httpClient.
		SetHeader("Accept", AcceptHeaderValue).
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader("Cookie", cookieHeader)
	if dateHeader != "" {
		httpClient.SetHeader("Date", dateHeader)
	}

	return &Client{
		HTTPClient: httpClient,
		BaseURL:    u.Scheme + "://" + u.Host,
		log:        log,
	}, nil
}

// Syllabus fetches the course syllabus from the configured course link.
func (c *Client) Syllabus(courseLink string) (response.CoursePlayerSyllabusResponse, error) {
	var res response.CoursePlayerSyllabusResponse
	r := c.newRequest(courseLink, &res)
	if _, err := c.do(r); err != nil {
		return response.CoursePlayerSyllabusResponse{}, err
	}
	return res, nil
}

// LessonDetail fetches lesson detail for one content item.
func (c *Client) LessonDetail(contentableID int) (response.CoursePlayerLessonResponse, error) {
	var res response.CoursePlayerLessonResponse
	r := c.newRequest(c.BaseURL+fmt.Sprintf(CoursePlayerLessonPath, contentableID), &res)
	if _, err := c.do(r); err != nil {
		return response.CoursePlayerLessonResponse{}, err
	}
	return res, nil
}

// QuizDetail fetches the question/choice payload for one quiz.
func (c *Client) QuizDetail(quizID int) (response.CoursePlayerQuizResponse, error) {
	var res response.CoursePlayerQuizResponse
	r := c.newRequest(c.BaseURL+fmt.Sprintf(CoursePlayerQuizPath, quizID), &res)
	if _, err := c.do(r); err != nil {
		return response.CoursePlayerQuizResponse{}, err
	}
	return res, nil
}

func (c *Client) newRequest(url string, res interface{}) *resty.Request {
	r := c.HTTPClient.R()
	r.Method = resty.MethodGet
	r.URL = url
	r.SetResult(res)
	return r
}

func (c *Client) do(r *resty.Request) (*resty.Response, error) {
	c.log.Debugf("Http request start, method: %s, url: %s", r.Method, r.URL)
	resp, err := r.Execute(r.Method, r.URL)
	if err != nil {
		return nil, err
	}

	statusCode := resp.StatusCode()
	if statusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if statusCode != http.StatusOK {
		c.log.Warnf("Http request end, method: %s, url: %s, status code: %d",
			r.Method, r.URL, statusCode)
		return nil, ErrAPIBadStatus{r.URL, statusCode}
	}
	return resp, nil
}
