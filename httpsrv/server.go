package httpsrv

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tutils/trand"
	"github.com/tutils/trand/counter/period"
	"github.com/tutils/trand/pcg"
)

// 请求量上限
const (
	maxRandWords = 65536
	maxRandBytes = 1 << 20
	maxUUIDs     = 1024
)

// APIResponse 定义统一的API响应格式
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RandResponse 随机字响应
type RandResponse struct {
	Variant string   `json:"variant"`
	Width   int      `json:"width"`
	Words   []string `json:"words"`
}

// Server 随机数服务
type Server struct {
	seed uint64
	mux  *http.ServeMux
}

// NewServer 创建随机数服务，seed为主种子
func NewServer(seed uint64) *Server {
	s := &Server{
		seed: seed,
	}

	// 设置路由
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/api/rand", s.handleRand)
	mux.HandleFunc("/api/bytes", s.handleBytes)
	mux.HandleFunc("/api/uuid", s.handleUUID)
	mux.HandleFunc("/stream", s.serveStream)
	s.mux = mux

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// newEngine 每个请求使用独立流，避免并发请求共享引擎状态
func (s *Server) newEngine() *pcg.PCG64 {
	return pcg.NewPCG64Seq(s.seed, pcg.NextSeq())
}

// StartServer 启动HTTP随机数服务器
func StartServer(listenAddress string, seed uint64) error {
	s := NewServer(seed)

	// 启动服务器
	log.Printf("[INFO] 启动HTTP随机数服务器")
	log.Printf("[INFO] 监听地址: %s", listenAddress)
	log.Printf("[INFO] 主种子: %d", seed)
	return http.ListenAndServe(listenAddress, s)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>trand</title></head>
<body>
<h1>trand random service</h1>
<ul>
<li><code>GET /api/rand?n=16&amp;width=64</code> random words (hex)</li>
<li><code>GET /api/rand?n=16&amp;variant=setseq_xsh_rr_64_32</code> pick an engine variant</li>
<li><code>GET /api/bytes?n=64</code> raw random octets</li>
<li><code>GET /api/uuid?n=4</code> random UUIDs</li>
<li><code>GET /stream</code> websocket byte stream</li>
</ul>
</body>
</html>
`

// serveIndex 首页
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

// parseCount 解析数量参数
func parseCount(r *http.Request, key string, def, max int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("无效的数量参数: %q", s)
	}
	if n > max {
		return 0, fmt.Errorf("数量超出上限: %d > %d", n, max)
	}
	return n, nil
}

// writeJSON 返回JSON响应
func writeJSON(w http.ResponseWriter, clientIP string, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("[ERROR] %s 编码响应失败: %v", clientIP, err)
	}
}

// handleRand 处理随机字请求
func (s *Server) handleRand(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr
	log.Printf("[INFO] %s 请求随机字", clientIP)

	if r.Method != http.MethodGet {
		log.Printf("[ERROR] %s 方法不允许，期望GET，实际为 %s", clientIP, r.Method)
		http.Error(w, "只支持GET请求", http.StatusMethodNotAllowed)
		return
	}

	n, err := parseCount(r, "n", 16, maxRandWords)
	if err != nil {
		log.Printf("[ERROR] %s %v", clientIP, err)
		writeJSON(w, clientIP, APIResponse{Success: false, Error: err.Error()})
		return
	}

	// variant参数优先，width参数选择默认引擎
	q := r.URL.Query()
	variant := q.Get("variant")
	if variant == "" {
		switch q.Get("width") {
		case "", "64":
			variant = string(pcg.SetseqXslRR12864)
		case "32":
			variant = string(pcg.SetseqXshRR6432)
		default:
			log.Printf("[ERROR] %s 无效的width参数: %q", clientIP, q.Get("width"))
			writeJSON(w, clientIP, APIResponse{Success: false, Error: "width只支持32或64"})
			return
		}
	}

	g, err := pcg.New(
		pcg.WithVariant(pcg.Variant(variant)),
		pcg.WithSeed(s.seed),
		pcg.WithSeq(pcg.NextSeq()),
	)
	if err != nil {
		log.Printf("[ERROR] %s 创建生成器失败: %v", clientIP, err)
		writeJSON(w, clientIP, APIResponse{Success: false, Error: err.Error()})
		return
	}

	words := make([]string, n)
	if g.OutputBits() == 32 {
		for i := range words {
			words[i] = fmt.Sprintf("0x%08x", uint32(g.Uint64()))
		}
	} else {
		for i := range words {
			words[i] = fmt.Sprintf("0x%016x", g.Uint64())
		}
	}

	log.Printf("[INFO] %s 成功生成随机字，共 %d 个 (%s)", clientIP, n, variant)
	writeJSON(w, clientIP, APIResponse{
		Success: true,
		Data: RandResponse{
			Variant: variant,
			Width:   g.OutputBits(),
			Words:   words,
		},
	})
}

// handleBytes 处理随机字节请求
func (s *Server) handleBytes(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr
	log.Printf("[INFO] %s 请求随机字节", clientIP)

	if r.Method != http.MethodGet {
		log.Printf("[ERROR] %s 方法不允许，期望GET，实际为 %s", clientIP, r.Method)
		http.Error(w, "只支持GET请求", http.StatusMethodNotAllowed)
		return
	}

	n, err := parseCount(r, "n", 32, maxRandBytes)
	if err != nil {
		log.Printf("[ERROR] %s %v", clientIP, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 发送随机字节
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", n))
	if _, err := io.CopyN(w, trand.NewReader(s.newEngine()), int64(n)); err != nil {
		log.Printf("[ERROR] %s 发送随机字节失败: %v", clientIP, err)
		return
	}

	log.Printf("[INFO] %s 随机字节发送完成: %d bytes", clientIP, n)
}

// handleUUID 处理UUID请求
func (s *Server) handleUUID(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr
	log.Printf("[INFO] %s 请求UUID", clientIP)

	if r.Method != http.MethodGet {
		log.Printf("[ERROR] %s 方法不允许，期望GET，实际为 %s", clientIP, r.Method)
		http.Error(w, "只支持GET请求", http.StatusMethodNotAllowed)
		return
	}

	n, err := parseCount(r, "n", 1, maxUUIDs)
	if err != nil {
		log.Printf("[ERROR] %s %v", clientIP, err)
		writeJSON(w, clientIP, APIResponse{Success: false, Error: err.Error()})
		return
	}

	rd := trand.NewReader(s.newEngine())
	ids := make([]string, n)
	for i := range ids {
		id, err := uuid.NewRandomFromReader(rd)
		if err != nil {
			log.Printf("[ERROR] %s 生成UUID失败: %v", clientIP, err)
			writeJSON(w, clientIP, APIResponse{Success: false, Error: err.Error()})
			return
		}
		ids[i] = id.String()
	}

	log.Printf("[INFO] %s 成功生成UUID，共 %d 个", clientIP, n)
	writeJSON(w, clientIP, APIResponse{Success: true, Data: ids})
}

// serveStream 通过websocket推送随机字节流
func (s *Server) serveStream(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr

	// frames为0表示持续推送，直到对端断开
	frames := 0
	if v := r.URL.Query().Get("frames"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("[ERROR] %s 无效的frames参数: %q", clientIP, v)
			http.Error(w, "无效的frames参数", http.StatusBadRequest)
			return
		}
		frames = n
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] %s websocket升级失败: %v", clientIP, err)
		return
	}
	defer conn.Close()

	log.Printf("[INFO] %s 开始推送随机字节流", clientIP)

	rd := trand.NewReader(s.newEngine())
	c := period.NewPeriodCounter(time.Second)
	dst := &counterWriter{w: newWsWriter(conn), c: c}
	buf := make([]byte, streamFrameSize)
	for i := 0; frames == 0 || i < frames; i++ {
		rd.Read(buf)
		if _, err := dst.Write(buf); err != nil {
			break
		}
	}

	log.Printf("[INFO] %s 推送结束, 共 %s, 速率 %s/s",
		clientIP, humanReadable(uint64(c.Value())), humanReadable(uint64(c.RatePerSec())))
}
