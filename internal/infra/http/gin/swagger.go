package ginserver

import (
	"bytes"
	"embed"
	"net/http"
	"text/template"

	gin "github.com/gin-gonic/gin"
)

const (
	docsPath   = "/swagger"
	docPath    = docsPath + "/doc.json"
	docsMaxAge = "public, max-age=300"
)

//go:embed swagger/openapi.json swagger/index.html
var swaggerFS embed.FS

// apiDocs holds the OpenAPI document and the swagger-ui page rendered once at
// startup with the document's URL.
type apiDocs struct {
	doc  []byte
	page []byte
}

func loadAPIDocs() apiDocs {
	doc, err := swaggerFS.ReadFile("swagger/openapi.json")
	if err != nil {
		panic("ginserver: missing embedded openapi.json: " + err.Error())
	}
	tmpl := template.Must(template.ParseFS(swaggerFS, "swagger/index.html"))
	var page bytes.Buffer
	if err := tmpl.Execute(&page, struct{ Title, DocURL string }{"Smart Host API", docPath}); err != nil {
		panic("ginserver: render swagger page: " + err.Error())
	}
	return apiDocs{doc: doc, page: page.Bytes()}
}

func registerSwaggerRoutes(router gin.IRoutes) {
	docs := loadAPIDocs()
	router.GET(docPath, func(c *gin.Context) {
		c.Header("Cache-Control", docsMaxAge)
		c.Data(http.StatusOK, "application/json", docs.doc)
	})
	router.GET(docsPath, func(c *gin.Context) {
		c.Header("Cache-Control", docsMaxAge)
		c.Data(http.StatusOK, "text/html; charset=utf-8", docs.page)
	})
}
