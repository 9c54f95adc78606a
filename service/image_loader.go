package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync"
	"time"

	"catalog-image-warmer/models"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 64
	defaultTimeout   = 15 * time.Second
	// maxImageBytes caps a single download
	maxImageBytes = 20 << 20
)

var (
	ErrEmptyURL     = errors.New("image URL is empty")
	ErrQueueFull    = errors.New("image loader queue is full")
	ErrLoaderClosed = errors.New("image loader is closed")
)

// ImageLoaderOptions configures an ImageLoader
type ImageLoaderOptions struct {
	Workers   int
	QueueSize int
	// Client is used for downloads. When nil a client with a 15s timeout is used.
	Client *http.Client
	Cache  *ImageCache
}

type loadJob struct {
	url    string
	size   models.SizeHint
	fit    models.FitMode
	target models.ImageTarget // nil for a plain fetch
	cb     models.LoadCallback
}

func (j *loadJob) done(err error) {
	if j.cb != nil {
		j.cb(err)
	}
}

// ImageLoader downloads images, scales them to the requested size and keeps the result
// in an ImageCache. Work is queued and handled by a fixed number of workers.
// Implements ImageLoaderInterface
type ImageLoader struct {
	client *http.Client
	cache  *ImageCache
	jobs   chan *loadJob
	group  singleflight.Group

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// Ensure ImageLoader implements ImageLoaderInterface
var _ ImageLoaderInterface = (*ImageLoader)(nil)

// NewImageLoader creates an ImageLoader and starts its workers
func NewImageLoader(opts ImageLoaderOptions) *ImageLoader {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &ImageLoader{
		client: client,
		cache:  opts.Cache,
		jobs:   make(chan *loadJob, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	l.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go l.run()
	}

	logrus.Infof("🖼️  Image loader started: workers=%d, queue=%d", workers, queueSize)
	return l
}

// Fetch queues a download of req.URL into the cache. Failures are only logged.
func (l *ImageLoader) Fetch(req models.FetchRequest) {
	l.enqueue(&loadJob{
		url:  req.URL,
		size: models.SizeHint{Dimension: req.Size},
		fit:  req.Fit,
	})
}

// LoadInto queues a load of req.URL into target. cb receives the outcome; when the job
// cannot be queued cb is called before LoadInto returns.
func (l *ImageLoader) LoadInto(req models.LoadRequest, target models.ImageTarget, cb models.LoadCallback) {
	l.enqueue(&loadJob{
		url:    req.URL,
		size:   req.Size,
		fit:    req.Fit,
		target: target,
		cb:     cb,
	})
}

// Close stops accepting work, aborts in-flight downloads and waits for the workers to exit
func (l *ImageLoader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.jobs)
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
	logrus.Info("🛑 Image loader stopped")
}

func (l *ImageLoader) enqueue(j *loadJob) {
	if err := l.tryEnqueue(j); err != nil {
		j.done(err)
	}
}

func (l *ImageLoader) tryEnqueue(j *loadJob) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrLoaderClosed
	}

	select {
	case l.jobs <- j:
		return nil
	default:
		logrus.WithField("url", j.url).Warn("⚠️  Image loader queue is full, dropping request")
		return ErrQueueFull
	}
}

func (l *ImageLoader) run() {
	defer l.wg.Done()
	for j := range l.jobs {
		l.handle(j)
	}
}

func (l *ImageLoader) handle(j *loadJob) {
	log := logrus.WithFields(logrus.Fields{"url": j.url, "fit": j.fit.String()})

	size := j.size.Dimension
	if j.size.FitToTarget && j.target != nil {
		size.Width, size.Height = j.target.LayoutSize()
	}

	data, err := l.variant(j.url, size, j.fit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("Image load aborted")
		} else {
			log.WithError(err).Warn("❌ Image load failed")
		}
		j.done(err)
		return
	}

	if j.target == nil {
		log.Debugf("✓ Image fetched: %dx%d", size.Width, size.Height)
		j.done(nil)
		return
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.WithError(err).Warn("❌ Cached image could not be decoded")
		j.done(fmt.Errorf("failed to decode cached image: %w", err))
		return
	}
	j.target.SetImage(img)
	j.done(nil)
}

// variant returns the encoded image for url at size and fit, from the cache when possible.
// Concurrent requests for the same variant share one download.
func (l *ImageLoader) variant(url string, size models.Dimension, fit models.FitMode) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	key := CacheKey(url, size, fit)
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		if l.cache != nil && l.cache.Exists(key) {
			return l.cache.Read(key)
		}

		raw, err := l.download(url)
		if err != nil {
			return nil, err
		}

		img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		data, err := encodeVariant(transform(img, size, fit))
		if err != nil {
			return nil, err
		}

		if l.cache != nil {
			if err := l.cache.Save(key, data); err != nil {
				logrus.WithError(err).Warn("⚠️  Failed to cache image")
			}
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (l *ImageLoader) download(url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// transform scales img into a width x height box. Crop fills the box and trims the
// overflow around the center; contain keeps the whole image inside the box without
// upscaling. Sizes that are not positive leave the image untouched.
func transform(img image.Image, size models.Dimension, fit models.FitMode) image.Image {
	if size.Width <= 0 || size.Height <= 0 {
		return img
	}
	if fit == models.FitCrop {
		return imaging.Fill(img, size.Width, size.Height, imaging.Center, imaging.Lanczos)
	}
	return imaging.Fit(img, size.Width, size.Height, imaging.Lanczos)
}
