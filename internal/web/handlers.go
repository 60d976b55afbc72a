package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jgouly/cube-solver-suite/internal/roux"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
	Best     bool   `json:"best"`
}

type SolveResult struct {
	DL    string `json:"dl"`
	Moves string `json:"moves"`
	Len   int    `json:"len"`
}

type SolveResponse struct {
	Solutions []SolveResult `json:"solutions"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Roux First Block Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Roux First Block Solver</h1>
    <div class="container">
        <form id="solveForm">
            <label>Scramble:</label><br>
            <input type="text" id="scramble" placeholder="R U2 R' U' R U' R'" style="width: 300px;">
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, best: true })
                });

                const result = await response.json();
                const div = document.getElementById('result');
                div.innerHTML = result.solutions.map(s =>
                    '<p><strong>' + s.dl + '</strong> (' + s.len + ' moves): ' + s.moves + '</p>'
                ).join('');
                div.style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	solutions, err := roux.SolveFirstBlock(req.Scramble, 0)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	if req.Best && len(solutions) > 1 {
		solutions = solutions[:1]
	}

	results := make([]SolveResult, len(solutions))
	for i, s := range solutions {
		results[i] = SolveResult{DL: s.DL, Moves: s.Moves, Len: s.Len}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SolveResponse{Solutions: results})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
