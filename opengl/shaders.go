package opengl

// Shared vertex stage: position, normal and UV in world space.
const litVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 world  = model * vec4(inPosition, 1.0);
    fragPos     = world.xyz;
    fragNormal  = mat3(transpose(inverse(model))) * inNormal;
    fragUV      = inUV;
    gl_Position = projection * view * world;
}
` + "\x00"

// Phong point light with distance attenuation, sampled diffuse and
// specular maps.
const litFragSrc = `
#version 410 core
struct Material {
    sampler2D diffuse;
    sampler2D specular;
    float     shininess;
};

struct Light {
    vec3  position;
    vec3  ambient;
    vec3  diffuse;
    vec3  specular;
    float constant;
    float linear;
    float quadratic;
};

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

uniform Material material;
uniform Light    light;
uniform vec3     viewPos;

out vec4 outColor;

void main() {
    vec3 base = texture(material.diffuse, fragUV).rgb;
    vec3 spec = texture(material.specular, fragUV).rgb;

    vec3  n       = normalize(fragNormal);
    vec3  toLight = normalize(light.position - fragPos);
    float diff    = max(dot(n, toLight), 0.0);

    vec3  toView = normalize(viewPos - fragPos);
    vec3  refl   = reflect(-toLight, n);
    float shine  = pow(max(dot(toView, refl), 0.0), material.shininess);

    float d     = length(light.position - fragPos);
    float atten = 1.0 / (light.constant + light.linear * d + light.quadratic * d * d);

    vec3 ambient  = light.ambient * base;
    vec3 diffuse  = light.diffuse * diff * base * atten;
    vec3 specular = light.specular * shine * spec * atten;
    outColor = vec4(ambient + diffuse + specular, 1.0);
}
` + "\x00"

// Unlit lamp: texture scaled by intensity.
const lampFragSrc = `
#version 410 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

uniform sampler2D tex;
uniform float     intensity;

out vec4 outColor;

void main() {
    outColor = vec4(texture(tex, fragUV).rgb * intensity, 1.0);
}
` + "\x00"
