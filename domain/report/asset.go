package report

// ChartAsset references a rendered chart on disk. Assets are transient:
// the pipeline owner deletes them once the document renderer has consumed
// the report, on success and failure alike.
type ChartAsset struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
