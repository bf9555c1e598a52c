// Package scaffold assembles the final project file set and packages it. The
// assembler is total: whatever the model produced, or failed to produce, the
// output always contains a runnable Flask backend and a buildable Vite
// frontend.
package scaffold

// RequiredFrontendFiles is the minimal frontend file set every scaffold
// carries. Assemble backfills any of these the model left out.
var RequiredFrontendFiles = []string{
	"frontend/package.json",
	"frontend/vite.config.js",
	"frontend/index.html",
	"frontend/src/main.jsx",
	"frontend/src/App.jsx",
	"frontend/src/components/AutoLayout.jsx",
}

// DefaultFiles returns a fresh copy of the failsafe scaffold. Callers may
// mutate the returned map freely.
func DefaultFiles() map[string]string {
	files := make(map[string]string, len(defaultFiles))
	for k, v := range defaultFiles {
		files[k] = v
	}
	return files
}

var defaultFiles = map[string]string{
	"server.py": defaultServerPy,

	"requirements.txt": "flask\nflask_cors\n",

	"frontend/package.json": `{
  "name": "react-app",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.0.0",
    "react-dom": "^18.0.0"
  },
  "devDependencies": {
    "vite": "^5.0.0",
    "@vitejs/plugin-react": "^4.0.0"
  }
}`,

	"frontend/vite.config.js": `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';
export default defineConfig({ plugins: [react()] });
`,

	// index.html must stay free of /src/main.jsx references; Vite injects
	// the production script during the build.
	"frontend/index.html": `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Generated React App</title>
  </head>
  <body>
    <div id="root"></div>
    <!-- Vite will inject the production script reference here during 'npm run build' -->
  </body>
</html>
`,

	"frontend/src/main.jsx": `import React from 'react';
import { createRoot } from 'react-dom/client';
import App from './App.jsx';

createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`,

	"frontend/src/App.jsx": `import React, {useEffect, useState} from 'react';
import AutoLayout from './components/AutoLayout.jsx';

export default function App(){
  const [data, setData] = useState(null);
  useEffect(()=>{
    fetch('/api/data')
      .then(r=>r.json())
      .then(setData)
      .catch(e=>setData({error: String(e)}));
  }, []);
  return (
    <AutoLayout>
      <h1>Generated React Frontend</h1>
      <p>This is a functional fallback application. If the generation was successful, this content should be replaced by the design extracted from the UX spec.</p>
      <pre>{JSON.stringify(data, null, 2)}</pre>
    </AutoLayout>
  );
}
`,

	"frontend/src/components/AutoLayout.jsx": `import React from 'react';
export default function AutoLayout({children}){
  return (
    <div style={{fontFamily:'Arial, sans-serif', padding:20}}>
      {children}
    </div>
  );
}
`,

	"README.md": "# React + Flask Generated App\n\n" +
		"## Backend\n" +
		"1. Create a Python virtual environment and activate it.\n" +
		"2. Install dependencies: `pip install -r requirements.txt`\n" +
		"3. Run backend: `python server.py`\n\n" +
		"The backend exposes `/api/data` and `/api/<path>` endpoints, and serves the frontend build from `frontend/dist` if present.\n\n" +
		"## Frontend\n" +
		"1. `cd frontend`\n" +
		"2. `npm install`\n" +
		"3. `npm run build` to create the production files.\n" +
		"4. Then run the backend to serve the built app.\n",
}

const defaultServerPy = `import os
from flask import Flask, send_from_directory, jsonify, request
from flask_cors import CORS

app = Flask(__name__, static_folder=None)
CORS(app)

@app.route('/api/data', methods=['GET'])
def api_data():
    sample = {'message': 'Hello from Flask backend', 'ok': True}
    return jsonify(sample)

@app.route('/api/<path:subpath>', methods=['GET','POST'])
def api_proxy(subpath):
    info = {
        'requested_path': subpath,
        'method': request.method,
        'args': request.args.to_dict(),
    }
    try:
        info['json'] = request.get_json(silent=True)
    except Exception:
        info['json'] = None
    return jsonify(info)

@app.route('/', defaults={'path': ''})
@app.route('/<path:path>')
def serve_frontend(path):
    """Serves the built frontend assets from frontend/dist, acting as the
    SPA catch-all."""
    dist_dir = os.path.join(os.getcwd(), 'frontend', 'dist')
    requested_file = os.path.join(dist_dir, path)

    if path != '' and os.path.exists(requested_file):
        directory = os.path.dirname(requested_file)
        filename = os.path.basename(requested_file)
        return send_from_directory(directory, filename)

    index_path = os.path.join(dist_dir, 'index.html')
    if os.path.exists(index_path):
        return send_from_directory(dist_dir, 'index.html')

    return jsonify({'message': 'Frontend build not found. Run ` + "`cd frontend && npm install && npm run build`" + `.'}), 200

if __name__ == '__main__':
    app.run(host='0.0.0.0', port=int(os.environ.get('PORT', 5000)), debug=True)
`
