// Package views holds the stateless presentation helpers: the tweet label
// formatter and the server-rendered single-tweet page.
package views

import (
	"html/template"
	"io"
)

// TweetBox produces the display label for a single tweet: "username: text"
// when the author is known, otherwise just the text.
func TweetBox(text, username string) string {
	if username != "" {
		return username + ": " + text
	}
	return text
}

var tweetPage = template.Must(template.New("tweet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>twtrd</title>
</head>
<body>
  <div>
    <h3>{{.Label}}</h3>
  </div>
</body>
</html>
`))

// RenderTweetPage writes the HTML page for a single tweet.
func RenderTweetPage(w io.Writer, text, username string) error {
	return tweetPage.Execute(w, map[string]string{"Label": TweetBox(text, username)})
}
